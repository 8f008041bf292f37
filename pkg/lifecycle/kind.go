package lifecycle

//go:generate go run github.com/dmarkham/enumer -type Kind -trimprefix Kind -transform lower -output kind.gen.go

// Kind classifies lifecycle failures so transport layers can map them to
// status codes without string-matching messages.
type Kind int

const (
	KindConflict Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
)
