package mdblock

// Walker is a callback invoked for each code block of a document. The walker
// may modify block.Content or the block's attributes; changed blocks are
// written into the Document returned by [Walk].
type Walker func(block *Block) error

// Walk calls walker for every code block of doc, in document order. If the
// walker changes any block, Walk returns true and the updated document. When
// nothing changed, it returns false and doc itself. doc is never modified.
func Walk(doc Document, walker Walker) (bool, Document, error) {
	var changes []Block

	for _, block := range doc {
		if block.Kind != KindCode {
			continue
		}

		copied := block

		if err := walker(&copied); err != nil {
			return false, nil, err
		}

		copied.ID = block.ID
		copied.Kind = KindCode
		copied = copied.WithAttrs(copied.Attrs)

		if copied.Content != block.Content || copied.Language() != block.Language() {
			changes = append(changes, copied)
		}
	}

	if len(changes) == 0 {
		return false, doc, nil
	}

	for _, change := range changes {
		doc = doc.Replace(change)
	}

	return true, doc, nil
}

// Unfence returns the code blocks of doc.
func Unfence(doc Document) Document {
	var blocks Document

	for _, block := range doc {
		if block.Kind == KindCode {
			blocks = append(blocks, block)
		}
	}

	return blocks
}
