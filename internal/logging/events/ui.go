package events

import "github.com/atomicstack/bookshelf/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (UITracer) MenuEnter(itemID, label string) {
	logging.Trace("menu.enter", map[string]interface{}{
		"item":  itemID,
		"label": label,
	})
}

func (UITracer) MenuCursor(title string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"menu": title, "cursor": cursor})
}

func (UITracer) Screen(from, to string) {
	logging.Trace("ui.screen", map[string]interface{}{"from": from, "to": to})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (FilterTracer) Cleared(title string) {
	logging.Trace("filter.clear", map[string]interface{}{"menu": title})
}

func (FilterTracer) Append(title, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"menu": title, "filter": filter})
}

func (FilterTracer) Backspace(title, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"menu": title, "filter": filter})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
