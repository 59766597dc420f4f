package connection

// ReqAttack carries a target counted from 1, like the terminal input.
type ReqAttack struct {
	X int `json:"x"`
	Y int `json:"y"`
}
