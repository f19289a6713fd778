package constants

// HebrewAlphabet contains the 22 base Hebrew letters used for falling glyphs
// Final forms are excluded so morphing never produces a mid-word final letter
var HebrewAlphabet = []rune{
	'א', 'ב', 'ג', 'ד', 'ה', 'ו', 'ז', 'ח', 'ט', 'י', 'כ',
	'ל', 'מ', 'נ', 'ס', 'ע', 'פ', 'צ', 'ק', 'ר', 'ש', 'ת',
}

// SpinnerFrames are the HUD spinner glyphs, cycled in order
var SpinnerFrames = []rune{'|', '/', '-', '\\'}
