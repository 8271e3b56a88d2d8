// Package updatebook implements the Update Book use case: catalog details
// and the total copy count change. A total below the number of copies
// currently out on loan would make availability negative and is refused.
package updatebook
