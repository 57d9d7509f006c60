package forbiddencalls

import (
	"fmt"
	"log"
	"os"
)

func main() {
	log.Fatal("allowed in main")        // No want
	log.Fatalf("allowed in %s", "main") // No want
	os.Exit(0)                          // No want
	fmt.Print("still forbidden")        // want "fmt.Print is forbidden, write to an explicit io.Writer"
}

func init() {
	panic("panic forbidden even in init") // want "panic is forbidden"
	log.Fatal("forbidden in init")        // want "log.Fatal is forbidden outside main function"
	os.Exit(1)                            // want "os.Exit is forbidden outside main function"
}
