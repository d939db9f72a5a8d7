package progress

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestLoader(t *testing.T) {
	t.Run("SuccessSnapsTo100", func(t *testing.T) {
		l := NewLoader(time.Millisecond)
		defer l.Close()

		release := make(chan struct{})
		state := l.Load(context.Background(), "spot-1", func(ctx context.Context) (string, error) {
			<-release
			return "base64data", nil
		})
		if !state.Loading || state.Progress != 0 {
			t.Fatalf("Expected fresh loading state, got %+v", state)
		}

		// Let the ticker run; progress must stay below 100 while pending.
		time.Sleep(30 * time.Millisecond)
		state, ok := l.State("spot-1")
		if !ok {
			t.Fatal("Expected a tracked state for spot-1")
		}
		if !state.Loading {
			t.Fatal("Expected load to still be pending")
		}
		if state.Progress >= 100 {
			t.Errorf("Progress reached %d before the fetch settled", state.Progress)
		}

		close(release)
		<-l.Done("spot-1")

		state, _ = l.State("spot-1")
		if state.Loading {
			t.Error("Expected loading to be finished")
		}
		if state.Image != "base64data" {
			t.Errorf("Expected stored image, got %q", state.Image)
		}
		if state.Progress != 100 {
			t.Errorf("Expected progress 100 after success, got %d", state.Progress)
		}
	})

	t.Run("ProgressClampsAt95", func(t *testing.T) {
		l := NewLoader(time.Millisecond)
		defer l.Close()

		release := make(chan struct{})
		l.Load(context.Background(), "spot-2", func(ctx context.Context) (string, error) {
			<-release
			return "img", nil
		})

		// 25+ ticks would overshoot 95 without the clamp.
		time.Sleep(50 * time.Millisecond)
		state, _ := l.State("spot-2")
		if state.Progress > 95 {
			t.Errorf("Expected progress clamped at 95, got %d", state.Progress)
		}
		close(release)
		<-l.Done("spot-2")
	})

	t.Run("FailureResetsProgress", func(t *testing.T) {
		l := NewLoader(time.Millisecond)
		defer l.Close()

		l.Load(context.Background(), "spot-3", func(ctx context.Context) (string, error) {
			return "", errors.New("Netzwerkfehler. Bitte überprüfe deine Internetverbindung.")
		})
		<-l.Done("spot-3")

		state, _ := l.State("spot-3")
		if state.Loading {
			t.Error("Expected loading to be finished")
		}
		if state.Err == "" {
			t.Error("Expected a user-facing error message")
		}
		if state.Image != "" {
			t.Errorf("Expected no image on failure, got %q", state.Image)
		}
		if state.Progress != 0 {
			t.Errorf("Expected progress reset to 0 on failure, got %d", state.Progress)
		}
	})

	t.Run("RepeatedLoadDoesNotRefetch", func(t *testing.T) {
		l := NewLoader(time.Millisecond)
		defer l.Close()

		calls := 0
		fetch := func(ctx context.Context) (string, error) {
			calls++
			return "img", nil
		}
		l.Load(context.Background(), "spot-4", fetch)
		<-l.Done("spot-4")

		state := l.Load(context.Background(), "spot-4", fetch)
		if calls != 1 {
			t.Errorf("Expected exactly one fetch, got %d", calls)
		}
		if state.Image != "img" || state.Progress != 100 {
			t.Errorf("Expected cached final state, got %+v", state)
		}
	})

	t.Run("CloseDiscardsInFlightResult", func(t *testing.T) {
		l := NewLoader(time.Millisecond)

		release := make(chan struct{})
		l.Load(context.Background(), "spot-5", func(ctx context.Context) (string, error) {
			<-release
			return "late", nil
		})
		l.Close()
		close(release)
		<-l.Done("spot-5")

		state, _ := l.State("spot-5")
		if state.Image != "" {
			t.Errorf("Expected result after Close to be discarded, got %q", state.Image)
		}
	})
}
