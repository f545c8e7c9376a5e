package elysion_test

import (
	"fmt"

	"impractical.co/elysion"
	"impractical.co/elysion/content"
	"impractical.co/elysion/reveal"
)

func ExampleWorkshopsSection_Cards() {
	bundle, err := content.Default()
	if err != nil {
		panic(err)
	}
	section := elysion.WorkshopsSection{Copy: bundle.Workshops}
	cards, err := section.Cards()
	if err != nil {
		panic(err)
	}
	for _, card := range cards {
		hidden := card.Motion.Directive(reveal.Hidden)
		fmt.Printf("%s: y=%v delay=%v solo=%v panel=%v\n", card.Entry.ID, hidden.TranslateY, hidden.Delay, card.Solo(), card.Panel())
	}

	//Output:
	// photography: y=40 delay=0s solo=true panel=false
	// ar-vr: y=40 delay=200ms solo=false panel=true
}

func ExampleAboutSection() {
	about := elysion.AboutSection{}
	for _, m := range []reveal.Motion{about.Header().Motion, about.ImageMotion(), about.CopyMotion(), about.ClosingMotion()} {
		hidden := m.Directive(reveal.Hidden)
		fmt.Printf("x=%v y=%v delay=%v\n", hidden.TranslateX, hidden.TranslateY, hidden.Delay)
	}

	//Output:
	// x=0 y=30 delay=0s
	// x=-30 y=0 delay=200ms
	// x=30 y=0 delay=300ms
	// x=0 y=20 delay=500ms
}
