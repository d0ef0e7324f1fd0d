// Package guard decide si una vista protegida muestra contenido, un
// placeholder de carga o una redirección al login, según el estado de
// resolución de la sesión.
package guard

import (
	"context"
	"sync"

	"dashly/internal/service"
)

// State es el estado de resolución de sesión de un montaje de vista.
type State string

const (
	StateLoading         State = "loading"
	StateAuthenticated   State = "authenticated"
	StateUnauthenticated State = "unauthenticated"
)

// ResolveFunc obtiene los claims de la sesión vigente. Un error (token
// ausente, inválido o vencido) equivale a sesión inexistente.
type ResolveFunc func(ctx context.Context) (service.Claims, error)

// Guard es la máquina de estados que protege una vista. Cada llamada a
// Resolve representa un montaje: arranca en Loading y termina en
// Authenticated o Unauthenticated. Mientras está en Loading no se
// muestra contenido protegido ni se redirige.
type Guard struct {
	mu         sync.Mutex
	state      State
	claims     service.Claims
	generation uint64
	redirected bool

	resolve           ResolveFunc
	onUnauthenticated func()
}

// New crea un guard con el resolver dado y el efecto de navegación al
// punto de entrada de login. onUnauthenticated puede ser nil.
func New(resolve ResolveFunc, onUnauthenticated func()) *Guard {
	return &Guard{
		state:             StateLoading,
		resolve:           resolve,
		onUnauthenticated: onUnauthenticated,
	}
}

// Resolve ejecuta una resolución de sesión para un nuevo montaje. Si el
// contexto se cancela antes de completar (desmontaje), no se aplica
// ningún cambio de estado ni se dispara la redirección. Una resolución
// más nueva invalida a la anterior.
func (g *Guard) Resolve(ctx context.Context) {
	g.mu.Lock()
	g.generation++
	gen := g.generation
	g.state = StateLoading
	g.claims = service.Claims{}
	g.redirected = false
	resolve := g.resolve
	g.mu.Unlock()

	var (
		claims service.Claims
		err    error
	)
	if resolve != nil {
		claims, err = resolve(ctx)
	} else {
		err = context.Canceled
	}

	g.mu.Lock()
	if gen != g.generation || ctx.Err() != nil {
		// Vista desmontada o resolución superada; descartar.
		g.mu.Unlock()
		return
	}
	if err != nil {
		g.state = StateUnauthenticated
		fire := !g.redirected && g.onUnauthenticated != nil
		g.redirected = true
		g.mu.Unlock()
		if fire {
			g.onUnauthenticated()
		}
		return
	}
	g.state = StateAuthenticated
	g.claims = claims
	g.mu.Unlock()
}

// State devuelve el estado actual del guard.
func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Claims devuelve la identidad de la sesión resuelta; ok es false salvo
// en Authenticated.
func (g *Guard) Claims() (service.Claims, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != StateAuthenticated {
		return service.Claims{}, false
	}
	return g.claims, true
}
