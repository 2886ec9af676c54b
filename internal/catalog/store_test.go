package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techrecruit-portal/internal/events"
	"techrecruit-portal/internal/models"
)

type fakePersister struct {
	saved []models.Language
	err   error
}

func (f *fakePersister) SaveLanguage(lang models.Language) error {
	f.saved = append(f.saved, lang)
	return f.err
}

func TestStore_Load(t *testing.T) {
	t.Run("loads_both_record_shapes", func(t *testing.T) {
		store := NewStore(models.LangEnglish, nil, nil, nil)
		require.NoError(t, store.Load("testdata/jobs.json"))

		assert.True(t, store.Loaded())
		records := store.Snapshot()
		require.Len(t, records, 2)
		assert.Equal(t, "J1", records[0].ID)
		assert.Equal(t, "J2", records[1].ID)
		assert.Equal(t, "Développeur", records[1].Title.In(models.LangFrench))
	})

	t.Run("missing_file", func(t *testing.T) {
		store := NewStore(models.LangEnglish, nil, nil, nil)
		err := store.Load("testdata/does-not-exist.json")

		var loadErr *LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.False(t, store.Loaded())
		assert.Empty(t, store.Snapshot())
	})

	t.Run("malformed_document", func(t *testing.T) {
		store := NewStore(models.LangEnglish, nil, nil, nil)
		err := store.Load("testdata/malformed.json")

		var loadErr *LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.False(t, store.Loaded())
	})

	t.Run("duplicate_ids_rejected", func(t *testing.T) {
		store := NewStore(models.LangEnglish, nil, nil, nil)
		err := store.Load("testdata/duplicate.json")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate job id")
		assert.False(t, store.Loaded())
	})
}

func TestStore_SetLanguage(t *testing.T) {
	t.Run("persists_and_broadcasts_on_change", func(t *testing.T) {
		hub := events.NewHub()
		ch := hub.Subscribe()
		defer hub.Unsubscribe(ch)

		prefs := &fakePersister{}
		store := NewStore(models.LangEnglish, hub, prefs, nil)

		store.SetLanguage(models.LangFrench)

		assert.Equal(t, models.LangFrench, store.Language())
		assert.Equal(t, []models.Language{models.LangFrench}, prefs.saved)

		evt := <-ch
		assert.Equal(t, events.LanguageChanged, evt.Name)
		assert.Equal(t, "fr", evt.Language)
	})

	t.Run("idempotent_switch_is_silent", func(t *testing.T) {
		hub := events.NewHub()
		ch := hub.Subscribe()
		defer hub.Unsubscribe(ch)

		prefs := &fakePersister{}
		store := NewStore(models.LangEnglish, hub, prefs, nil)

		store.SetLanguage(models.LangEnglish)

		assert.Empty(t, prefs.saved)
		select {
		case evt := <-ch:
			t.Fatalf("unexpected event %v", evt)
		default:
		}
	})

	t.Run("persistence_failure_is_non_fatal", func(t *testing.T) {
		prefs := &fakePersister{err: errors.New("disk full")}
		store := NewStore(models.LangEnglish, nil, prefs, nil)

		store.SetLanguage(models.LangFrench)
		assert.Equal(t, models.LangFrench, store.Language())
	})
}

func TestFindByID(t *testing.T) {
	records := []models.JobRecord{{ID: "J1"}, {ID: "J2"}}

	t.Run("found", func(t *testing.T) {
		rec, err := FindByID(records, "J2")
		require.NoError(t, err)
		assert.Equal(t, "J2", rec.ID)
	})

	t.Run("not_found", func(t *testing.T) {
		_, err := FindByID(records, "J9")
		assert.ErrorIs(t, err, ErrJobNotFound)
	})
}
