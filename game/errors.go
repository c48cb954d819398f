package game

import "errors"

var (
	ErrRoomFull = errors.New("Room is full (max 4 players)")
)
