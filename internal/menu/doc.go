// Package menu loads the noodle counter's catalog: the base noodles, the
// ingredients and the sauces a customer can choose from, with their prices
// and spiciness.
//
// The catalog is written in HCL. A default catalog is embedded in the
// binary; Loader.Load can replace it with one or more files from disk, which
// are merged in the order given. Entries keep their declaration order, and
// that order is the numbering shown to the customer (starting at 1).
package menu
