package mdblock

// Document is an ordered block sequence. Its methods never modify the
// receiver; every edit returns a new Document, so a Document value can be
// shared between readers freely.
type Document []Block

// MoveDirection selects the neighbour a block is swapped with.
type MoveDirection int

const (
	MoveUp MoveDirection = iota
	MoveDown
)

func (d Document) clone(extra int) Document {
	res := make(Document, len(d), len(d)+extra)
	copy(res, d)

	return res
}

// Find returns the index of the block with the given id, or -1.
func (d Document) Find(id string) int {
	for i, block := range d {
		if block.ID == id {
			return i
		}
	}

	return -1
}

// Insert places block at index; out of range indexes append.
func (d Document) Insert(index int, block Block) Document {
	if index < 0 || index > len(d) {
		index = len(d)
	}

	res := d.clone(1)
	res = append(res[:index], append(Document{block}, res[index:]...)...)

	return res
}

// Append adds block at the end.
func (d Document) Append(block Block) Document {
	return d.Insert(len(d), block)
}

// Replace swaps the block with the same id for block. Unknown ids leave the
// document unchanged.
func (d Document) Replace(block Block) Document {
	idx := d.Find(block.ID)
	if idx < 0 {
		return d
	}

	res := d.clone(0)
	res[idx] = block

	return res
}

// Update changes content and attributes of the block with the given id.
// A nil attrs keeps the current attributes.
func (d Document) Update(id, content string, attrs Attrs) Document {
	idx := d.Find(id)
	if idx < 0 {
		return d
	}

	block := d[idx].WithContent(content)
	if attrs != nil {
		block = block.WithAttrs(attrs)
	}

	return d.Replace(block)
}

// Remove drops the block with the given id.
func (d Document) Remove(id string) Document {
	idx := d.Find(id)
	if idx < 0 {
		return d
	}

	res := make(Document, 0, len(d)-1)
	res = append(res, d[:idx]...)

	return append(res, d[idx+1:]...)
}

// Move swaps the block with its neighbour. Moving past either end is a no-op.
func (d Document) Move(id string, dir MoveDirection) Document {
	idx := d.Find(id)
	if idx < 0 {
		return d
	}

	other := idx + 1
	if dir == MoveUp {
		other = idx - 1
	}

	if other < 0 || other >= len(d) {
		return d
	}

	res := d.clone(0)
	res[idx], res[other] = res[other], res[idx]

	return res
}
