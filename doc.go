// Package combine concatenates the text files of a directory into a single
// file, combined_output.txt, with a header line naming each file:
//
//	--- Contents of a.txt ---
//	hello
//
//	--- Contents of b.txt ---
//	world
//
// Files are combined in whatever order the filesystem lists them.
// Subdirectories and other non-regular entries are skipped, as are the
// output file itself and the running program. A file that cannot be read, or
// that is not valid UTF-8, is reported and left out, and the run continues:
//
//	report, err := combine.New(".").WithSelf(os.Args[0]).Run()
//
// The building blocks are pipes. A pipe carries a reader and an error status;
// once the error status is set, every further pipe operation is a no-op, so a
// chain can be written without checking for errors at each stage:
//
//	block, err := combine.File("a.txt").DecodeText().Block("a.txt").String()
package combine
