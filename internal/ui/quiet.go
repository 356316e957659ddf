package ui

// quietPresenter draws nothing while hashing.
type quietPresenter struct{}

func (*quietPresenter) Start(int64)  {}
func (*quietPresenter) Add(int)      {}
func (*quietPresenter) Finish(error) {}
