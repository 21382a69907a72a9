package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p DirectionPayload) Validate() error {
	if p.Dx == 0 && p.Dy == 0 && p.Dz == 0 {
		return errors.New("movement vector cannot be zero")
	}
	if p.Dx < -1 || p.Dx > 1 || p.Dy < -1 || p.Dy > 1 || p.Dz < -1 || p.Dz > 1 {
		return errors.New("movement step too large")
	}
	// Только кардинальные ходы: одна ось за раз, без диагоналей
	axes := 0
	for _, d := range [3]int{p.Dx, p.Dy, p.Dz} {
		if d != 0 {
			axes++
		}
	}
	if axes > 1 {
		return errors.New("diagonal movement is not allowed")
	}
	return nil
}
