package testgen

import "io"

// Run generates a suite and writes it to w in the plain text layout
// expected by the program under stress test.
//
// Parameters:
//   - w: Writer that receives the generated input
//   - opts: Seed, bounds and formatting options
//
// Returns an error if the bounds are invalid or writing fails.
//
// Example:
//
//	err := testgen.Run(os.Stdout, testgen.WithSeed(1700000000))
func Run(w io.Writer, opts ...Option) error {
	o := newOptions(opts...)
	suite, err := generate(o)
	if err != nil {
		return err
	}
	return suite.WriteText(w, o.trailingSpace)
}

// Debug generates a suite and writes it as indented JSON, including the seed
// and the drawn ceilings, so that a failing run can be replayed with WithSeed.
//
// Example:
//
//	var buf bytes.Buffer
//	err := testgen.Debug(&buf, testgen.WithSeed(42))
//	fmt.Println(buf.String())
func Debug(w io.Writer, opts ...Option) error {
	o := newOptions(opts...)
	suite, err := generate(o)
	if err != nil {
		return err
	}
	return suite.WriteJSON(w)
}
