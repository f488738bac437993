// Package memdb runs an in-process MySQL-protocol server backed by memory
// tables. It lets the application and its integration tests run without an
// external MySQL instance.
package memdb

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	sqle "github.com/dolthub/go-mysql-server"
	"github.com/dolthub/go-mysql-server/memory"
	"github.com/dolthub/go-mysql-server/server"
	"github.com/dolthub/go-mysql-server/sql"

	"lmsmodules/pkg/logger"
)

const readyTimeout = 5 * time.Second

// Server is a running in-memory MySQL server holding a single database.
type Server struct {
	DBName string
	Port   int

	srv       *server.Server
	cancel    context.CancelFunc
	closeOnce sync.Once
	closeErr  error
}

// Start launches a server on a free localhost port and waits until it accepts
// connections. The server stops when ctx is cancelled or Close is called.
func Start(ctx context.Context, dbName string) (*Server, error) {
	port, err := freePort()
	if err != nil {
		return nil, fmt.Errorf("failed to get free port: %w", err)
	}

	// Foreign keys need an index on the referenced primary key.
	mdb := memory.NewDatabase(dbName)
	mdb.EnablePrimaryKeyIndexes()
	provider := memory.NewDBProvider(mdb)
	engine := sqle.NewDefault(provider)

	cfg := server.Config{
		Protocol: "tcp",
		Address:  fmt.Sprintf("localhost:%d", port),
	}
	srv, err := server.NewServer(cfg, engine, sql.NewContext, memory.NewSessionBuilder(provider), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}

	serverCtx, cancel := context.WithCancel(ctx)
	s := &Server{DBName: dbName, Port: port, srv: srv, cancel: cancel}

	go func() {
		if err := srv.Start(); err != nil {
			logger.Debugf("memdb server on port %d stopped: %v", port, err)
		}
	}()
	go func() {
		<-serverCtx.Done()
		s.shutdown()
	}()

	if err := waitReady(ctx, port); err != nil {
		s.Close()
		return nil, err
	}
	logger.Infof("Started in-memory MySQL server on port %d (database %s)", port, dbName)
	return s, nil
}

// DSN returns a go-sql-driver/mysql data source name for the server's database.
func (s *Server) DSN() string {
	return fmt.Sprintf("root@tcp(localhost:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC&interpolateParams=true", s.Port, s.DBName)
}

// Close stops the server. It is safe to call more than once.
func (s *Server) Close() error {
	s.cancel()
	s.shutdown()
	return s.closeErr
}

func (s *Server) shutdown() {
	s.closeOnce.Do(func() {
		if err := s.srv.Close(); err != nil {
			s.closeErr = fmt.Errorf("failed to close server: %w", err)
		}
	})
}

func waitReady(ctx context.Context, port int) error {
	readyCtx, cancel := context.WithTimeout(ctx, readyTimeout)
	defer cancel()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	addr := fmt.Sprintf("localhost:%d", port)
	for {
		select {
		case <-readyCtx.Done():
			return fmt.Errorf("memdb server on port %d not ready: %w", port, readyCtx.Err())
		case <-ticker.C:
			conn, err := net.DialTimeout("tcp", addr, 100*time.Millisecond)
			if err == nil {
				conn.Close()
				return nil
			}
		}
	}
}

func freePort() (int, error) {
	l, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}
