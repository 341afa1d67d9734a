package constraints

type Uint interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}
