// Package styles provides ready-made presentation styles.
//
// [Sheet] is a bottom sheet: it slides up from the bottom edge over a
// dimming overlay, sizes itself to its content, lifts above the keyboard
// and can be swiped down to dismiss. [Toast] is a small card at the bottom
// of the screen that lets touches outside it through.
package styles
