package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/simaogato/epcqr-backend/internal/adapter/grpc"
	"github.com/simaogato/epcqr-backend/internal/adapter/qrcode"
	"github.com/simaogato/epcqr-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/epcqr-backend/internal/domain"
	"github.com/simaogato/epcqr-backend/internal/usecase/issuance"
)

const (
	defaultAPIToken = "dev-token"
	defaultGRPCAddr = ":8080"
)

func main() {
	// Optional .env file for local runs; real environment variables win
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	// 1. Setup archive database (optional)
	var payloadRepo domain.PayloadRepository
	var db *postgres.DB
	if archiveDisabled() {
		log.Println("Payload archive disabled, running without database")
	} else {
		// Add 2-second delay to ensure Postgres is up (Simple retry)
		time.Sleep(2 * time.Second)

		var err error
		db, err = postgres.NewDB(dbConnectionString())
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = db.EnsureSchema(ctx)
		cancel()
		if err != nil {
			log.Fatalf("Failed to prepare database schema: %v", err)
		}
		log.Println("Payload archive schema ready")

		payloadRepo = postgres.NewPayloadRepository(db)
	}

	// 2. Initialize QR renderer and services (Use Cases)
	renderer := qrcode.NewRenderer(qrSize())
	issuanceService := issuance.NewIssuanceService(renderer, payloadRepo)

	// 3. Start gRPC Server
	apiToken := os.Getenv("API_TOKEN")
	if apiToken == "" {
		apiToken = defaultAPIToken
	}

	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(log.Default()),
			grpcadapter.AuthInterceptor(apiToken),
		),
	)

	grpcadapter.RegisterPayloadServiceServer(grpcServer, grpcadapter.NewServer(issuanceService))

	reflection.Register(grpcServer)

	grpcAddr := os.Getenv("GRPC_ADDR")
	if grpcAddr == "" {
		grpcAddr = defaultGRPCAddr
	}

	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", grpcAddr, err)
	}

	// Start server in a goroutine
	go func() {
		log.Printf("gRPC server listening on %s", grpcAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC server: %v", err)
		}
	}()

	// Graceful shutdown
	waitForShutdown(grpcServer, db)
}

// dbConnectionString reads DB_CONN_STR or builds it from individual vars (Docker friendly)
func dbConnectionString() string {
	if dbConnStr := os.Getenv("DB_CONN_STR"); dbConnStr != "" {
		return dbConnStr
	}

	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "postgres")
	dbname := getEnv("DB_NAME", "epcqr")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)
}

func archiveDisabled() bool {
	disabled, err := strconv.ParseBool(strings.TrimSpace(os.Getenv("ARCHIVE_DISABLED")))
	return err == nil && disabled
}

func qrSize() int {
	raw := os.Getenv("QR_SIZE")
	if raw == "" {
		return qrcode.DefaultSize
	}
	size, err := strconv.Atoi(raw)
	if err != nil || size <= 0 {
		log.Printf("Ignoring invalid QR_SIZE %q, using %d", raw, qrcode.DefaultSize)
		return qrcode.DefaultSize
	}
	return size
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(grpcServer *grpclib.Server, db *postgres.DB) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Printf("Received signal: %v. Shutting down gracefully...", sig)

	grpcServer.GracefulStop()
	log.Println("gRPC server stopped")

	if db != nil {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}
}
