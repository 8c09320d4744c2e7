package domain

type Staff struct {
	ID       uint64
	Login    string
	Password string
}
