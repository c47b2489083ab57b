package styles_test

import (
	"fmt"

	"github.com/matzehuels/backdrop/pkg/styles"
)

func ExampleRegistry_Resolve() {
	d, err := styles.Default().Resolve("quantum_ai")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(d.Title, d.Background.Kind)

	_, err = styles.Default().Resolve("not_a_style")
	fmt.Println(err)
	// Output:
	// Quantum AI radial
	// UNKNOWN_STYLE: unknown style "not_a_style"
}
