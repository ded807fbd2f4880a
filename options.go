package codered

// PrintOptions holds configuration options for Print.
type PrintOptions struct {
	// SourceMapSource is the file name recorded as sources[0] in the
	// emitted map. Empty means no source file is recorded.
	SourceMapSource string

	// SourceMapContent is the original source stored verbatim in
	// sourcesContent[0]. Only used when SourceMapSource is set.
	SourceMapContent string

	// EncodeMappings selects the mappings representation: VLQ-encoded
	// string (true, the default) or decoded segment arrays (false).
	EncodeMappings *bool

	// GetName is applied to identifier names in binding and reference
	// position before emitting. When the result differs from the
	// original, the mapping segment records the original name so
	// source-map consumers can recover it. Nil means identity.
	GetName func(name string) string
}

// applyDefaults fills in default values for unset PrintOptions fields.
func (o *PrintOptions) applyDefaults() {
	if o.EncodeMappings == nil {
		encode := true
		o.EncodeMappings = &encode
	}
}
