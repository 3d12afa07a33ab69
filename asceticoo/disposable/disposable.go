package disposable

type Disposable interface {
	Dispose()
}

type DisposableImp struct {
	callback func()
	disposed bool
}

// NewDisposable wraps callback so that it runs on the first Dispose call only.
func NewDisposable(callback func()) *DisposableImp {
	return &DisposableImp{callback: callback}
}

func (d *DisposableImp) Dispose() {
	if d.disposed {
		return
	}
	d.disposed = true
	if d.callback != nil {
		d.callback()
	}
}

type CompositeDisposableImp struct {
	delegates []Disposable
	disposed  bool
}

func NewCompositeDisposable(delegates ...Disposable) *CompositeDisposableImp {
	return &CompositeDisposableImp{delegates: delegates}
}

func (d *CompositeDisposableImp) Add(delegate Disposable) {
	if d.disposed {
		delegate.Dispose()
		return
	}
	d.delegates = append(d.delegates, delegate)
}

func (d *CompositeDisposableImp) Dispose() {
	if d.disposed {
		return
	}
	d.disposed = true
	for _, delegate := range d.delegates {
		delegate.Dispose()
	}
	d.delegates = nil
}
