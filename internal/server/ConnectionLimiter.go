package server

import (
	"net"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
)

// ConnectionLimiter caps concurrent SSH sessions per client IP.
type ConnectionLimiter struct {
	maxPerIP int

	ipMutex   sync.Mutex
	ipCounter map[string]int
}

func NewConnectionLimiter(maxPerIP int) *ConnectionLimiter {
	return &ConnectionLimiter{
		maxPerIP:  maxPerIP,
		ipCounter: make(map[string]int),
	}
}

// Acquire reserves a slot for ip and returns the resulting count. It fails when
// the ip already holds maxPerIP sessions.
func (l *ConnectionLimiter) Acquire(ip string) (int, bool) {
	l.ipMutex.Lock()
	defer l.ipMutex.Unlock()
	if l.ipCounter[ip] >= l.maxPerIP {
		return l.ipCounter[ip], false
	}
	l.ipCounter[ip]++
	return l.ipCounter[ip], true
}

func (l *ConnectionLimiter) Release(ip string) {
	l.ipMutex.Lock()
	defer l.ipMutex.Unlock()
	l.ipCounter[ip]--
	if l.ipCounter[ip] <= 0 {
		delete(l.ipCounter, ip)
	}
}

func (l *ConnectionLimiter) Count(ip string) int {
	l.ipMutex.Lock()
	defer l.ipMutex.Unlock()
	return l.ipCounter[ip]
}

// Middleware rejects sessions over the limit before they reach the TUI.
func (l *ConnectionLimiter) Middleware() wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			ip := remoteIP(s.RemoteAddr())

			count, ok := l.Acquire(ip)
			if !ok {
				log.Warn("Connection denied: IP limit exceeded", "ip", ip, "attempted_count", count+1, "current_limit", l.maxPerIP)
				wish.Printf(s, "Too many active connections from your IP (%d/%d). Please try again later.\r\n", count+1, l.maxPerIP)
				s.Close()
				return
			}
			defer func() {
				l.Release(ip)
				log.Info("Connection closed", "ip", ip, "count_after", l.Count(ip))
			}()

			log.Info("Connection accepted", "ip", ip, "current_count", count, "limit", l.maxPerIP)
			next(s)
		}
	}
}

func remoteIP(addr net.Addr) string {
	if tcpAddr, ok := addr.(*net.TCPAddr); ok {
		return tcpAddr.IP.String()
	}
	if addr == nil {
		return "unknown"
	}
	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	return host
}

