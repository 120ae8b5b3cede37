package model

// Kind discriminates the two model reference variants.
type Kind string

const (
	// KindFetched marks a catalog model downloaded and digest-verified locally.
	KindFetched Kind = "fetched"
	// KindExplicit marks a user-supplied model file taken as-is.
	KindExplicit Kind = "explicit"
)

// Reference is the resolved model artifact. Only LocalPath is serialized into
// the compiled document; the symbolic and digest metadata is resolution-time
// context for logging and caching.
type Reference struct {
	Kind      Kind
	Name      string
	Digest    string
	SourceURL string
	LocalPath string
}
