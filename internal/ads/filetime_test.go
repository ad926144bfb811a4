package ads

import (
	"testing"
	"time"
)

func TestFileTimeRoundTrip(t *testing.T) {
	f := FileTime(133_503_504_000_000_000)
	b := f.Bytes()
	got := FileTimeFromBytes(b)
	if got != f {
		t.Errorf("round-trip = %d, want %d", got, f)
	}
}

func TestFileTimeFromSliceLengthCheck(t *testing.T) {
	if _, err := FileTimeFromSlice([]byte{1, 2, 3}); err == nil {
		t.Error("expected UnexpectedLengthError")
	}
}

func TestFileTimeToTimeSaturatesAtUnixEpoch(t *testing.T) {
	got := FileTime(0).ToTime()
	want := time.Unix(0, 0).UTC()
	if !got.Equal(want) {
		t.Errorf("ToTime(0) = %v, want %v", got, want)
	}
}

func TestFromTimeSaturatesForPreEpoch(t *testing.T) {
	pre1970 := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	got := FromTime(pre1970)
	if got != FileTime(TicksToUnixEpoch) {
		t.Errorf("FromTime(pre-1970) = %d, want %d (the 1970 anchor)", got, TicksToUnixEpoch)
	}
}

func TestFileTimeWallClockRoundTrip(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 30, 0, 0, time.UTC)
	ft := FromTime(now)
	back := ft.ToTime()
	if !back.Equal(now) {
		t.Errorf("round-trip through FileTime: got %v, want %v", back, now)
	}
}
