// Package media runs the per-turn image and audio generation branches.
package media

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// ImageOutcome is the image branch's result. A branch failure is recorded
// here, never propagated as a panic or early return out of the fan-out.
type ImageOutcome struct {
	OK      bool
	Err     error
	Base64  string
	URL     string
	Elapsed time.Duration
}

// AudioOutcome is the audio branch's result.
type AudioOutcome struct {
	OK      bool
	Err     error
	Base64  string
	Elapsed time.Duration
}

// Fanout starts both branches concurrently and waits for both regardless of
// either's outcome. There is no short-circuit: failing fast on one branch
// would orphan the other branch's in-flight paid call.
func Fanout(ctx context.Context, images ImageSynthesizer, voices VoiceSynthesizer, imgReq ImageRequest, voiceReq VoiceRequest) (ImageOutcome, AudioOutcome) {
	var (
		wg    sync.WaitGroup
		img   ImageOutcome
		audio AudioOutcome
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		start := time.Now()
		result, err := images.Generate(ctx, imgReq)
		img.Elapsed = time.Since(start)
		if err != nil {
			img.Err = err
			log.Error("image branch failed", "elapsed", img.Elapsed, "err", err)
			return
		}
		img.OK = true
		img.Base64 = result.Base64
		img.URL = result.URL
		log.Info("image branch done", "elapsed", img.Elapsed)
	}()

	go func() {
		defer wg.Done()
		start := time.Now()
		data, err := voices.Synthesize(ctx, voiceReq)
		audio.Elapsed = time.Since(start)
		if err != nil {
			audio.Err = err
			log.Error("audio branch failed", "elapsed", audio.Elapsed, "err", err)
			return
		}
		audio.OK = true
		audio.Base64 = data
		log.Info("audio branch done", "elapsed", audio.Elapsed)
	}()

	wg.Wait()
	return img, audio
}
