package segpath

// Paths is a type used to enable transform operations on arrays of paths.
type Paths[M Mode] []*Path[M]

// Strings renders every path with its own separator.
func (source Paths[M]) Strings() []string {
	output := make([]string, len(source))
	for index, path := range source {
		output[index] = path.String()
	}
	return output
}

// UnixStrings returns the internal form of every path.
func (source Paths[M]) UnixStrings() []string {
	output := make([]string, len(source))
	for index, path := range source {
		output[index] = path.ToUnixString()
	}
	return output
}

// Unixers widens the slice for APIs that accept any Unixer.
func (source Paths[M]) Unixers() []Unixer {
	output := make([]Unixer, len(source))
	for index, path := range source {
		output[index] = path
	}
	return output
}
