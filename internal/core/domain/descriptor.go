package domain

// Record is the storage shape of a resource; every record exposes its immutable identifier.
type Record interface {
	RecordID() string
}

// Policy restricts mutating operations to a role set. An empty set admits any
// authenticated principal.
type Policy struct {
	Write  []Role
	Delete []Role
}

// Descriptor declares one resource for the generic engine:
//   - T is the stored record and also the response body.
//   - C is the creation body, validated before any write.
//   - P is the merge-patch body made of patch.Value / patch.Nullable fields.
type Descriptor[T Record, C any, P any] struct {
	Path       string
	Tag        string
	IDPrefix   string
	Collection string
	Policy     Policy

	// Build turns a validated creation body into a record with declared defaults applied.
	Build func(id string, in C) T
	// Merge applies only the fields present in p.
	Merge func(rec *T, p P)
}

// CollectionName is the storage collection/table for the resource.
func (d Descriptor[T, C, P]) CollectionName() string {
	if d.Collection != "" {
		return d.Collection
	}
	return collectionFromPath(d.Path)
}

func collectionFromPath(path string) string {
	out := make([]byte, 0, len(path))
	for i := 0; i < len(path); i++ {
		if path[i] == '-' {
			out = append(out, '_')
			continue
		}
		out = append(out, path[i])
	}
	return string(out)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
