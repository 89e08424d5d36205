//go:build linux

package remote

import (
	"io"
	"os"
	"path/filepath"
	"time"
	"unsafe"

	"go.uber.org/zap"
)

// inputEventSize is the size of a Linux input_event struct (timeval + u16 + u16 + s32).
var inputEventSize = int(unsafe.Sizeof(struct {
	Sec, Usec int64
	Type      uint16
	Code      uint16
	Value     int32
}{}))

// Open scans /dev/input/event* and reads every device it may open. Devices
// without permission are skipped.
func Open(logger *zap.Logger) *Reader {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := newReader()
	matches, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(matches) == 0 {
		logger.Debug("no evdev devices")
		return r
	}

	for _, path := range matches {
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		r.mu.Lock()
		r.stop = append(r.stop, f.Close)
		r.mu.Unlock()
		go r.readDevice(f, filepath.Base(path), logger)
	}
	return r
}

func (r *Reader) readDevice(f io.ReadCloser, device string, logger *zap.Logger) {
	defer f.Close()
	log := logger.With(zap.String("device", device))
	tr := newTranslator()
	buf := make([]byte, inputEventSize)
	for {
		if _, err := io.ReadFull(f, buf); err != nil {
			return
		}
		raw, ok := decodeEvent(buf)
		if !ok || raw.Type != evKey {
			continue
		}
		raw.Time = time.Now()
		raw.Device = device

		if raw.Value == keyValueDown {
			r.record(raw)
			log.Debug("evdev key press", zap.Uint16("code", raw.Code))
		}
		ev, ok := tr.translate(raw)
		if !ok {
			continue
		}
		if !r.deliver(ev) {
			log.Warn("dropping remote key event", zap.Stringer("event", ev))
		}
	}
}
