package events

import "github.com/atomicstack/bookshelf/internal/logging"

type StoreTracer struct{}

type PersistTracer struct{}

var (
	Store   = StoreTracer{}
	Persist = PersistTracer{}
)

func (StoreTracer) Put(index int, name string, pages, price int) {
	logging.Trace("store.put", map[string]interface{}{
		"index": index,
		"name":  name,
		"pages": pages,
		"price": price,
	})
}

func (StoreTracer) Get(index int, empty bool) {
	logging.Trace("store.get", map[string]interface{}{"index": index, "empty": empty})
}

func (StoreTracer) Sort(count int) {
	logging.Trace("store.sort", map[string]interface{}{"count": count})
}

func (PersistTracer) Write(path, format string, rows int) {
	logging.Trace("persist.write", map[string]interface{}{"path": path, "format": format, "rows": rows})
}

func (PersistTracer) Read(path, format string, rows int) {
	logging.Trace("persist.read", map[string]interface{}{"path": path, "format": format, "rows": rows})
}
