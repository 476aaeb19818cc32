// Package pjudmock simulates the court e-filing REST API for local
// development and tests: an in-memory demand list behind the handful of
// routes the real service exposes.
package pjudmock

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

// Fixed credentials recognised by the simulator.
const (
	// ValidRUT/ValidPassword authenticate successfully.
	ValidRUT      = "11.111.111-1"
	ValidPassword = "123"

	// UnavailableRUT simulates the court system being down: any call with
	// this RUT answers 500 regardless of password.
	UnavailableRUT = "22.222.222-2"
)

const seedRecords = 20

// Demand is one record of the simulated demand list.
type Demand struct {
	Index      int    `json:"index"`
	Rol        string `json:"rol"`
	Court      string `json:"court"`
	DebtorName string `json:"debtor_name"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
}

// credentialRequest is the body shared by all simulator routes.
type credentialRequest struct {
	RUT      string `json:"rut"`
	Password string `json:"password"`
	Index    *int   `json:"index"`
}

// Server holds the mutable demand list and its routes.
type Server struct {
	mu      sync.Mutex
	demands []Demand
}

// NewServer creates a simulator seeded with the standard demand list.
func NewServer() *Server {
	s := &Server{}
	s.Reset()
	return s
}

// Reset restores the seeded 20-record demand list.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.demands = make([]Demand, 0, seedRecords)
	courts := []string{
		"1° Juzgado Civil de Santiago",
		"2° Juzgado Civil de Santiago",
		"Juzgado de Letras de Valparaíso",
		"Juzgado de Letras de Concepción",
	}
	for i := 0; i < seedRecords; i++ {
		s.demands = append(s.demands, Demand{
			Index:      i,
			Rol:        fmt.Sprintf("C-%d-2026", 1000+i),
			Court:      courts[i%len(courts)],
			DebtorName: fmt.Sprintf("Deudor Simulado %d", i+1),
			Amount:     int64(500_000 + 125_000*i),
			Status:     "ingresada",
		})
	}
}

// Router builds the gin engine serving the simulator routes.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/v1")
	{
		v1.POST("/extract/demand_list/", s.extractDemandList)
		v1.POST("/send/demand/", s.removeDemand)
		v1.DELETE("/send/demand/", s.removeDemand)
	}
	return r
}

// checkCredentials applies the simulator's fixed credential rules. It
// writes the error response itself and reports whether the caller may
// proceed.
func (s *Server) checkCredentials(c *gin.Context, req credentialRequest) bool {
	if req.RUT == UnavailableRUT {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  http.StatusInternalServerError,
			"message": "PJUD no disponible",
		})
		return false
	}
	if req.RUT != ValidRUT || req.Password != ValidPassword {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  http.StatusUnauthorized,
			"message": "Credenciales inválidas",
		})
		return false
	}
	return true
}

func (s *Server) extractDemandList(c *gin.Context) {
	var req credentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  http.StatusBadRequest,
			"message": "Solicitud inválida",
		})
		return
	}
	if !s.checkCredentials(c, req) {
		return
	}

	s.mu.Lock()
	list := make([]Demand, len(s.demands))
	copy(list, s.demands)
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"status":  http.StatusOK,
		"message": "OK",
		"data":    list,
	})
}

// removeDemand serves both POST and DELETE /v1/send/demand/: either way the
// record whose index field matches is removed from the list.
func (s *Server) removeDemand(c *gin.Context) {
	var req credentialRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Index == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  http.StatusBadRequest,
			"message": "Solicitud inválida",
		})
		return
	}
	if !s.checkCredentials(c, req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, d := range s.demands {
		if d.Index == *req.Index {
			s.demands = append(s.demands[:i], s.demands[i+1:]...)
			c.JSON(http.StatusOK, gin.H{
				"status":  http.StatusOK,
				"message": "Demanda procesada",
			})
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{
		"status":  http.StatusNotFound,
		"message": "Demanda no encontrada",
	})
}
