package entity

import "time"

// User actor que registra movimientos. Sin credenciales: la autenticación
// queda fuera del alcance y el actor viaja como referencia en la petición.
type User struct {
	ID        string
	Name      string
	Email     string
	IsActive  bool
	CreatedAt time.Time
}
