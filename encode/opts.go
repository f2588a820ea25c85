package encode

type EncodeOption func(*EncState)

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodePath sets the header path of the node being encoded, for
// encoding a table on its own.
func EncodePath(keys ...string) EncodeOption {
	return func(es *EncState) { es.path = keys }
}
