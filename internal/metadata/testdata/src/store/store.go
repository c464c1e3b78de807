package store

// Item is a stored value
type Item struct {
	Data []byte
}

//stereotype::component
type Memory struct{}

func (m *Memory) Lookup(key string) (*Item, error) {
	return nil, nil
}
