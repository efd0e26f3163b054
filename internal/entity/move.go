package entity

type Move struct {
	Row  int  `json:"row"`
	Col  int  `json:"col"`
	Mark Mark `json:"mark"`
}

func (that Move) Position() Position {
	return Position{Row: that.Row, Col: that.Col}
}
