package mdblock

// ViewKind tells a grouped view node apart.
type ViewKind int

const (
	// ViewSingle wraps exactly one non-list block.
	ViewSingle ViewKind = iota
	// ViewGroup wraps a maximal run of list blocks.
	ViewGroup
)

func (k ViewKind) String() string {
	if k == ViewGroup {
		return "group"
	}

	return "single"
}

// View is one node of the display grouping of a document.
type View struct {
	Kind   ViewKind
	Blocks []Block

	// ID is the id of the single block, or of the first block of a group.
	ID string

	// Ordinals holds, per block of a group, the display number of ordered
	// list items and 0 for every other item.
	Ordinals []int
}

// Block returns the wrapped block of a single view.
func (v View) Block() Block {
	if len(v.Blocks) == 0 {
		return Block{}
	}

	return v.Blocks[0]
}

// Group derives the display grouping of blocks: contiguous list blocks of any
// mixture of list kinds form one group, every other block stands alone. The
// input is not modified.
func Group(blocks []Block) []View {
	var (
		views []View
		run   []Block
	)

	flush := func() {
		if len(run) == 0 {
			return
		}

		views = append(views, View{Kind: ViewGroup, ID: run[0].ID, Blocks: run, Ordinals: Ordinals(run)})
		run = nil
	}

	for _, block := range blocks {
		if block.Kind.IsList() {
			run = append(run, block)

			continue
		}

		flush()

		views = append(views, View{Kind: ViewSingle, ID: block.ID, Blocks: []Block{block}})
	}

	flush()

	return views
}

// Ordinals numbers the ordered list items of blocks. The counter grows by one
// per consecutive ordered item and restarts after any other list kind, so
// an ordered run following a bullet starts again at 1.
func Ordinals(blocks []Block) []int {
	res := make([]int, len(blocks))
	counter := 0

	for i, block := range blocks {
		if block.Kind == KindListOrdered {
			counter++
			res[i] = counter

			continue
		}

		counter = 0
	}

	return res
}
