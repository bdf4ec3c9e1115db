package events

import "github.com/atomicstack/bookshelf/internal/logging"

type PickerTracer struct{}

var Picker = PickerTracer{}

func (PickerTracer) List(dir string, entries int) {
	logging.Trace("picker.list", map[string]interface{}{"dir": dir, "entries": entries})
}

func (PickerTracer) Enter(dir string) {
	logging.Trace("picker.enter", map[string]interface{}{"dir": dir})
}

func (PickerTracer) Choose(path, via string) {
	logging.Trace("picker.choose", map[string]interface{}{"path": path, "via": via})
}

func (PickerTracer) Cancel(dir string) {
	logging.Trace("picker.cancel", map[string]interface{}{"dir": dir})
}

func (PickerTracer) Error(dir string, err error) {
	if err == nil {
		return
	}
	logging.Trace("picker.error", map[string]interface{}{"dir": dir, "error": err.Error()})
}
