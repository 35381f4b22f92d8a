// Package vocab holds the fixed reference vocabulary the builder embeds.
package vocab

import "semtint/refstore"

// Word pairs a vocabulary entry with its assigned color.
type Word struct {
	Text  string
	Color refstore.Color
}

func rgb(r, g, b uint8) refstore.Color {
	return refstore.Color{R: r, G: g, B: b}
}

// Words is the reference vocabulary in build order. Order matters: it
// decides tie-breaks at match time. Duplicate words stay distinct entries
// and compete independently.
var Words = []Word{
	{"love", rgb(255, 0, 0)},
	{"sun", rgb(255, 255, 0)},
	{"girl", rgb(255, 110, 240)},
	{"boy", rgb(0, 0, 255)},
	{"happy", rgb(255, 200, 0)},
	{"sad", rgb(0, 0, 255)},
	{"anger", rgb(200, 0, 0)},
	{"calm", rgb(0, 255, 200)},
	{"fear", rgb(50, 0, 50)},
	{"joy", rgb(255, 150, 0)},
	{"peace", rgb(0, 255, 100)},
	{"trust", rgb(0, 120, 255)},
	{"hate", rgb(150, 0, 0)},
	{"fun", rgb(255, 180, 0)},
	{"lonely", rgb(100, 100, 200)},
	{"excited", rgb(255, 90, 0)},
	{"bored", rgb(150, 150, 150)},
	{"cute", rgb(255, 160, 220)},
	{"dream", rgb(180, 0, 255)},
	{"music", rgb(0, 200, 255)},
	{"rain", rgb(0, 100, 200)},
	{"flower", rgb(255, 180, 180)},
	{"nature", rgb(0, 200, 100)},
	{"child", rgb(255, 220, 180)},
	{"loveable", rgb(255, 0, 100)},
	{"warm", rgb(255, 120, 0)},
	{"cold", rgb(0, 180, 255)},
	{"smile", rgb(255, 220, 0)},
	{"tears", rgb(0, 50, 255)},
	{"adventure", rgb(255, 140, 0)},
	{"hope", rgb(0, 255, 150)},
	{"dreamy", rgb(200, 100, 255)},
	{"mystery", rgb(50, 0, 100)},
	{"energy", rgb(255, 80, 0)},
	{"fearless", rgb(255, 0, 50)},
	{"calmness", rgb(0, 255, 200)},
	{"magic", rgb(200, 0, 255)},
	{"freedom", rgb(0, 255, 100)},
	{"curious", rgb(255, 200, 100)},
	{"bold", rgb(255, 0, 0)},
	{"gentle", rgb(100, 200, 255)},
	{"soft", rgb(200, 255, 255)},
	{"storm", rgb(100, 0, 100)},
	{"warmth", rgb(255, 100, 0)},
	{"loneliness", rgb(80, 80, 200)},
	{"passion", rgb(255, 0, 0)},
	{"confidence", rgb(255, 150, 0)},
	{"angerous", rgb(180, 0, 0)},
	{"joyful", rgb(255, 200, 0)},
	{"sorrow", rgb(0, 0, 150)},
	{"care", rgb(0, 200, 150)},
	{"gloom", rgb(50, 50, 100)},
	{"excitement", rgb(255, 90, 0)},
	{"lovebird", rgb(255, 0, 100)},
	{"peaceful", rgb(0, 255, 150)},
	{"curiosity", rgb(255, 180, 100)},
	{"playful", rgb(255, 150, 200)},
	{"romance", rgb(255, 0, 50)},
	{"affection", rgb(255, 50, 100)},
	{"delight", rgb(255, 200, 50)},
	{"comfort", rgb(100, 255, 200)},
	{"melancholy", rgb(0, 50, 200)},
	{"optimism", rgb(255, 220, 0)},
	{"pessimism", rgb(50, 0, 100)},
	{"trustworthy", rgb(0, 120, 255)},
	{"friendship", rgb(100, 200, 255)},
	{"admire", rgb(255, 180, 100)},
	{"surprise", rgb(255, 220, 50)},
	{"shock", rgb(200, 0, 0)},
	{"confident", rgb(255, 140, 0)},
	{"timid", rgb(100, 150, 255)},
	{"energetic", rgb(255, 80, 0)},
	{"lively", rgb(255, 180, 0)},
	{"sadness", rgb(0, 0, 200)},
	{"grief", rgb(50, 0, 150)},
	{"hopeful", rgb(0, 255, 100)},
	{"relax", rgb(0, 200, 200)},
	{"bliss", rgb(255, 220, 100)},
	{"cheerful", rgb(255, 180, 0)},
	{"envy", rgb(0, 150, 0)},
	{"jealousy", rgb(50, 100, 0)},
	{"fearful", rgb(50, 0, 50)},
	{"brave", rgb(255, 50, 0)},
	{"nervous", rgb(200, 100, 50)},
	{"peacekeeper", rgb(0, 255, 150)},
	{"lucky", rgb(255, 255, 0)},
	{"unlucky", rgb(50, 50, 50)},
	{"grateful", rgb(255, 200, 50)},
	{"thankful", rgb(255, 180, 50)},
	{"romantic", rgb(255, 0, 100)},
	{"friendly", rgb(0, 200, 255)},
	{"thoughtful", rgb(150, 200, 255)},
	{"hopefulness", rgb(0, 255, 120)},
	{"curiousness", rgb(255, 180, 100)},
	{"joyfulness", rgb(255, 200, 0)},
	{"sadistic", rgb(100, 0, 0)},
	{"lonelyness", rgb(80, 80, 200)},
	{"romanticize", rgb(255, 0, 50)},
	{"comforting", rgb(100, 255, 200)},
	{"delighted", rgb(255, 200, 50)},
	{"excitedly", rgb(255, 90, 0)},
	{"energetically", rgb(255, 80, 0)},
	{"blissful", rgb(255, 220, 100)},
	{"calmly", rgb(0, 255, 200)},
	{"gloomy", rgb(50, 50, 100)},
	{"romanceful", rgb(255, 0, 50)},
	{"cheery", rgb(255, 180, 0)},
	{"mysterious", rgb(50, 0, 100)},
	{"playfully", rgb(255, 150, 200)},
	{"fearlessly", rgb(255, 0, 50)},
	{"sadfully", rgb(0, 0, 200)},
	{"thoughtfully", rgb(150, 200, 255)},
	{"friendlily", rgb(0, 200, 255)},
	{"trustfully", rgb(0, 120, 255)},
	{"optimistically", rgb(255, 220, 0)},
	{"pessimistically", rgb(50, 0, 100)},
	{"gratefully", rgb(255, 200, 50)},
	{"thankfully", rgb(255, 180, 50)},
	{"cheerfully", rgb(255, 180, 0)},
	{"romantically", rgb(255, 0, 100)},
	{"peacefully", rgb(0, 255, 150)},
	{"nervously", rgb(200, 100, 50)},
	{"adventurous", rgb(255, 140, 0)},
	{"curiously", rgb(255, 180, 100)},
	{"magical", rgb(200, 0, 255)},
	{"dreamily", rgb(180, 0, 255)},
	{"lovely", rgb(255, 0, 0)},
	{"warmhearted", rgb(255, 120, 0)},
	{"coldhearted", rgb(0, 180, 255)},
	{"exciting", rgb(255, 90, 0)},
	{"peaceableness", rgb(0, 255, 100)},
	{"playfulness", rgb(255, 150, 200)},
	{"friendliness", rgb(0, 200, 255)},
	{"happiness", rgb(255, 200, 0)},
	{"sadnessful", rgb(0, 0, 255)},
	{"fearfulness", rgb(50, 0, 50)},
	{"angerful", rgb(200, 0, 0)},
	{"calmful", rgb(0, 255, 200)},
	{"trustful", rgb(0, 120, 255)},
	{"joyous", rgb(255, 150, 0)},
	{"sorrowful", rgb(0, 0, 150)},
	{"energetical", rgb(255, 80, 0)},
	{"blissfulness", rgb(255, 220, 100)},
	{"cheerfulness", rgb(255, 180, 0)},
	{"curiousful", rgb(255, 180, 100)},
	{"romancical", rgb(255, 0, 50)},
	{"friendfully", rgb(0, 200, 255)},
	{"magically", rgb(200, 0, 255)},
	{"hopefully", rgb(0, 255, 100)},
	{"delightful", rgb(255, 200, 50)},
	{"adventurously", rgb(255, 140, 0)},
	{"mysteriously", rgb(50, 0, 100)},
	{"calmnessful", rgb(0, 255, 200)},
	{"excitedful", rgb(255, 90, 0)},
	{"playfulnessful", rgb(255, 150, 200)},
	{"fearlesslyful", rgb(255, 0, 50)},
	{"lovefully", rgb(255, 0, 0)},
	{"red", rgb(255, 0, 0)},
	{"green", rgb(0, 255, 0)},
	{"blue", rgb(0, 0, 255)},
	{"yellow", rgb(255, 255, 0)},
	{"cyan", rgb(0, 255, 255)},
	{"magenta", rgb(255, 0, 255)},
	{"orange", rgb(255, 165, 0)},
	{"purple", rgb(128, 0, 128)},
	{"pink", rgb(255, 192, 203)},
	{"brown", rgb(165, 42, 42)},
	{"black", rgb(0, 0, 0)},
	{"white", rgb(255, 255, 255)},
	{"gray", rgb(128, 128, 128)},
	{"lime", rgb(0, 255, 0)},
	{"navy", rgb(0, 0, 128)},
	{"teal", rgb(0, 128, 128)},
	{"olive", rgb(128, 128, 0)},
	{"maroon", rgb(128, 0, 0)},
	{"silver", rgb(192, 192, 192)},
	{"gold", rgb(255, 215, 0)},
	{"violet", rgb(238, 130, 238)},
	{"indigo", rgb(75, 0, 130)},
	{"turquoise", rgb(64, 224, 208)},
	{"beige", rgb(245, 245, 220)},
	{"coral", rgb(255, 127, 80)},
	{"salmon", rgb(250, 128, 114)},
	{"khaki", rgb(240, 230, 140)},
	{"lavender", rgb(230, 230, 250)},
	{"peach", rgb(255, 218, 185)},
	{"mint", rgb(189, 252, 201)},
	{"apricot", rgb(251, 206, 177)},
	{"crimson", rgb(220, 20, 60)},
	{"azure", rgb(0, 127, 255)},
	{"emerald", rgb(80, 200, 120)},
	{"ruby", rgb(224, 17, 95)},
	{"sapphire", rgb(15, 82, 186)},
	{"amethyst", rgb(153, 102, 204)},
	{"carmine", rgb(150, 0, 24)},
	{"cerulean", rgb(42, 82, 190)},
	{"periwinkle", rgb(204, 204, 255)},
	{"chartreuse", rgb(127, 255, 0)},
	{"tan", rgb(210, 180, 140)},
	{"indianred", rgb(205, 92, 92)},
	{"orchid", rgb(218, 112, 214)},
	{"plum", rgb(221, 160, 221)},
	{"seafoam", rgb(159, 226, 191)},
	{"mustard", rgb(255, 219, 88)},
	{"blush", rgb(222, 93, 131)},
	{"shit", rgb(117, 99, 0)},
	{"sky", rgb(130, 228, 255)},
	{"cloud", rgb(130, 228, 255)},
	{"snow", rgb(247, 247, 247)},
	{"ocean", rgb(6, 66, 115)},
	{"forest", rgb(1, 68, 33)},
	{"tree", rgb(12, 174, 91)},
	{"flower", rgb(249, 213, 229)},
	{"desert", rgb(193, 154, 107)},
	{"sand", rgb(203, 189, 147)},
	{"stone", rgb(227, 203, 165)},
	{"fire", rgb(255, 0, 0)},
	{"ice", rgb(63, 208, 212)},
	{"sunset", rgb(238, 93, 108)},
	{"sunrise", rgb(253, 236, 167)},
	{"banana", rgb(251, 236, 93)},
	{"tomato", rgb(220, 20, 60)},
	{"lemon", rgb(255, 247, 0)},
	{"cherry", rgb(227, 2, 2)},
	{"fucking", rgb(255, 0, 0)},
	{"carrot", rgb(237, 145, 33)},
	{"pumpkin", rgb(255, 117, 24)},
	{"chocolate", rgb(113, 54, 0)},
	{"gold", rgb(207, 181, 59)},
	{"silver", rgb(192, 192, 192)},
	{"diamond", rgb(241, 247, 251)},
	{"blood", rgb(116, 7, 7)},
	{"smoke", rgb(216, 216, 216)},
	{"energy", rgb(255, 200, 0)},
	{"power", rgb(200, 0, 0)},
	{"freedom", rgb(64, 224, 208)},
	{"danger", rgb(255, 69, 0)},
	{"luck", rgb(0, 200, 0)},
	{"time", rgb(70, 130, 180)},
	{"knowledge", rgb(0, 102, 204)},
	{"death", rgb(48, 0, 48)},
	{"life", rgb(124, 252, 0)},
	{"growth", rgb(50, 205, 50)},
	{"decay", rgb(128, 128, 0)},
}
