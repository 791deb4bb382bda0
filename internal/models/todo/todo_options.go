package todo

// Patch описывает частичное обновление: nil-поле означает "не трогать".
// Заданный false для Completed — это явное значение, оно применяется.
type Patch struct {
	Title     *string
	Completed *bool
}

type PatchOption func(*Patch)

func WithTitle(title string) PatchOption {
	return func(p *Patch) {
		p.Title = &title
	}
}

func WithCompleted(completed bool) PatchOption {
	return func(p *Patch) {
		p.Completed = &completed
	}
}

func NewPatch(options ...PatchOption) Patch {
	p := Patch{}
	for _, opt := range options {
		if opt != nil {
			opt(&p)
		}
	}
	return p
}

func (p Patch) Empty() bool {
	return p.Title == nil && p.Completed == nil
}
