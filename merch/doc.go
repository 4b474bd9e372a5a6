// Package merch builds branded merchandise through per-brand factories.
//
// A Factory produces a family of products (Notebook, Pen, Hoodie) that all carry the
// factory's own brand. Factories are resolved from a Brand through a Registry:
//
//	f, err := merch.NewFactory(merch.Harman)
//	if err != nil {
//		return err
//	}
//	hoodie, err := f.CreateHoodie(merch.M)
package merch
