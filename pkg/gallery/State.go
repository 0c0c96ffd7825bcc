package gallery

/*
State is the modal's position: whether it is open, which portfolio item
is shown, and which slide of that item's effective gallery is active.
The zero value is a closed modal at item 0, slide 0.
*/
type State struct {
	Open        bool
	ActiveIndex int
	ActiveSlide int
}
