// Command formdemo builds a one-page document with a few interactive
// text fields and writes it to stdout or the given path.
package main

import (
	"fmt"
	"os"

	"github.com/vellumpdf/vellum/builder"
	"github.com/vellumpdf/vellum/colors"
	"github.com/vellumpdf/vellum/coords"
	"github.com/vellumpdf/vellum/forms"
)

func main() {
	b := builder.NewBuilder().SetProducer("vellum formdemo")
	b.NewPage(612, 792).
		AddTextField(coords.Rectangle{X: 72, Y: 700, W: 200, H: 20},
			forms.WithFieldName("name"),
			forms.WithDefaultValue("your name")).
		AddTextField(coords.Rectangle{X: 72, Y: 660, W: 200, H: 20},
			forms.WithFieldName("email"),
			forms.WithFontColor(colors.MustHex("333333")),
			forms.WithValidateScript(`event.rc = event.value.indexOf("@") >= 0;`)).
		AddTextArea(coords.Rectangle{X: 72, Y: 560, W: 400, H: 80}, 4,
			forms.WithFieldName("comments")).
		Finish()

	out := os.Stdout
	if len(os.Args) > 1 {
		f, err := os.Create(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if err := b.Write(out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
