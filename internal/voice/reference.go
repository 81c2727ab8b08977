// Package voice loads narrator reference bundles from the local asset store.
package voice

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/oleksii-nakhod/iconicall/internal/apperr"
	"github.com/oleksii-nakhod/iconicall/internal/models"
)

// Store reads reference audio/transcript assets from a fixed directory.
// Assets are static; bundles are loaded fresh every turn, no cache.
type Store struct {
	Dir string
}

// NewStore returns a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// LoadBundles loads one bundle per narrator, in speaker order. Loading is
// all-or-nothing: a missing asset for any narrator aborts the whole turn,
// with the narrator named in the error, before any paid call is made.
// Individual loads run concurrently.
func (s *Store) LoadBundles(profiles []models.NarratorProfile) ([]models.ReferenceBundle, error) {
	for _, p := range profiles {
		if err := s.verify(p); err != nil {
			return nil, err
		}
	}

	bundles := make([]models.ReferenceBundle, len(profiles))
	errs := make([]error, len(profiles))

	var wg sync.WaitGroup
	for i, p := range profiles {
		wg.Add(1)
		go func(i int, p models.NarratorProfile) {
			defer wg.Done()
			bundles[i], errs[i] = s.load(i, p)
		}(i, p)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return bundles, nil
}

// verify checks both assets exist without reading them.
func (s *Store) verify(p models.NarratorProfile) error {
	for _, name := range []string{p.RefAudio, p.RefTranscript} {
		if _, err := os.Stat(filepath.Join(s.Dir, name)); err != nil {
			return apperr.Wrapf(apperr.ErrMissingReference, "narrator %s: %s", p.Name, name)
		}
	}
	return nil
}

func (s *Store) load(index int, p models.NarratorProfile) (models.ReferenceBundle, error) {
	audio, err := os.ReadFile(filepath.Join(s.Dir, p.RefAudio))
	if err != nil {
		return models.ReferenceBundle{}, apperr.Wrapf(apperr.ErrMissingReference, "narrator %s: %v", p.Name, err)
	}
	transcript, err := os.ReadFile(filepath.Join(s.Dir, p.RefTranscript))
	if err != nil {
		return models.ReferenceBundle{}, apperr.Wrapf(apperr.ErrMissingReference, "narrator %s: %v", p.Name, err)
	}

	format := strings.TrimPrefix(filepath.Ext(p.RefAudio), ".")
	if format == "" {
		format = "mp3"
	}

	return models.ReferenceBundle{
		Index:       index,
		Narrator:    p.Name,
		AudioBase64: base64.StdEncoding.EncodeToString(audio),
		AudioFormat: format,
		Transcript:  strings.TrimSpace(string(transcript)),
	}, nil
}
