package cmd

import "github.com/ezerfernandes/mdblock/internal/mdblock"

// walk calls walker for the code blocks accepted by filter. Blocks whose info
// string cannot be parsed are skipped.
func walk(doc mdblock.Document, walker mdblock.Walker, filter filterFunc) (bool, mdblock.Document, error) {
	return mdblock.Walk(doc, func(block *mdblock.Block) error {
		lang, meta, err := mdblock.ParseInfo(block.Language())
		if err != nil {
			return nil //nolint:nilerr
		}

		if filter(lang, meta) {
			return walker(block)
		}

		return nil
	})
}
