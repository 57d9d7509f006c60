package forbiddencalls

import (
	"fmt"
	"io"
	"log"
	"os"
)

func SomePanicFunction() {
	panic("this is forbidden") // want "panic is forbidden"
}

func SomeLogFatalFunction() {
	log.Fatal("this is forbidden")      // want "log.Fatal is forbidden outside main function"
	log.Fatalf("%s", "also too")        // want "log.Fatalf is forbidden outside main function"
	log.Fatalln("and this one as well") // want "log.Fatalln is forbidden outside main function"
}

func SomeOsExitFunction() {
	os.Exit(1) // want "os.Exit is forbidden outside main function"
}

func WriteReport(w io.Writer, url string) {
	fmt.Fprintf(w, "Decoder URL:\n%s\n", url)
	fmt.Println(url)        // want "fmt.Println is forbidden, write to an explicit io.Writer"
	fmt.Printf("%s\n", url) // want "fmt.Printf is forbidden, write to an explicit io.Writer"
	_ = fmt.Sprintf("%s", url)
}

type generator struct{}

func (generator) main() {
	os.Exit(2) // want "os.Exit is forbidden outside main function"
}

func MultipleCallsFunction() {
	panic("panic 1")   // want "panic is forbidden"
	log.Fatal("fatal") // want "log.Fatal is forbidden outside main function"
	os.Exit(0)         // want "os.Exit is forbidden outside main function"
}
