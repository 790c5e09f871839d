package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"ogre-backend/docs"
	authHandler "ogre-backend/internal/api/auth"
	governanceHandler "ogre-backend/internal/api/governance"
	"ogre-backend/internal/config"
	"ogre-backend/internal/ledger"
	eventRepo "ogre-backend/internal/repository/event"
	proposalRepo "ogre-backend/internal/repository/proposal"
	userRepo "ogre-backend/internal/repository/user"
	authService "ogre-backend/internal/service/auth"
	governanceService "ogre-backend/internal/service/governance"
	"ogre-backend/internal/service/indexer"
	"ogre-backend/internal/service/keeper"
	"ogre-backend/pkg/blockchain"
	"ogre-backend/pkg/database"
	"ogre-backend/pkg/logger"
	"ogre-backend/pkg/utils"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title OGRE Governance API
// @version 1.0
// @description OGRE DAO governance backend API
// @host localhost:8080
// @BasePath /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	logger.Init(logger.DefaultConfig())
	logger.Info("Starting OGRE Backend v1.0.0")

	// 创建根context和WaitGroup用于协调关闭
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// 1. 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config: ", err)
		os.Exit(1)
	}
	logger.Init(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Development: cfg.Log.Development,
	})
	defer logger.Sync()

	// 2. 连接数据库
	db, err := database.NewPostgresConnection(&cfg.Database)
	if err != nil {
		logger.Error("Failed to connect to database: ", err)
		os.Exit(1)
	}
	if err := database.AutoMigrate(db); err != nil {
		os.Exit(1)
	}
	if err := database.CreateIndexes(db); err != nil {
		os.Exit(1)
	}

	// 3. 初始化账本与仓库层，索引按账本实例隔离
	chain := ledger.New(ledger.SystemClock{})
	logger.Info("Ledger created", "ledger_id", chain.ID())
	userRepository := userRepo.NewRepository(db)
	eventRepository := eventRepo.NewRepository(db, chain.ID())
	proposalRepository := proposalRepo.NewRepository(db, chain.ID())

	// 4. 初始化JWT管理器
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// 5. 初始化治理服务
	govSvc, err := governanceService.NewService(ctx, chain, cfg.DAO)
	if err != nil {
		logger.Error("Failed to init governance service: ", err)
		os.Exit(1)
	}
	govSvc.SetIndexer(indexer.NewProcessor(eventRepository, proposalRepository, govSvc))
	govSvc.SetHistory(proposalRepository, eventRepository)

	// 6. 就绪队列：Redis 不可用时退回进程内队列
	var readyQueue keeper.ReadyQueue
	var redisClient *redis.Client
	redisClient, err = database.NewRedisConnection(ctx, &cfg.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, using in-memory ready queue", "error", err.Error())
		readyQueue = keeper.NewMemoryReadyQueue()
	} else {
		readyQueue = keeper.NewRedisReadyQueue(redisClient)
	}
	govSvc.SetReadyQueue(readyQueue)

	// 7. 远端凭证查询
	var rpcClient blockchain.RPCClient
	if cfg.RPC.Enabled {
		rpcURL, err := cfg.GetRPCURL()
		if err != nil {
			logger.Error("Failed to build RPC URL: ", err)
			os.Exit(1)
		}
		rpcClient, err = blockchain.NewRPCClient(ctx, rpcURL, cfg.RPC.Timeout)
		if err != nil {
			logger.Error("Failed to connect to RPC: ", err)
		} else {
			govSvc.SetRemoteCredentials(rpcClient)
		}
	}

	// 8. 初始化认证服务与处理器
	authSvc := authService.NewService(userRepository, jwtManager)
	authHdl := authHandler.NewHandler(authSvc)
	govHdl := governanceHandler.NewHandler(govSvc, authSvc, cfg.Server.Faucet)

	// 9. 设置Gin和路由
	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	v1 := router.Group("/api/v1")
	{
		authHdl.RegisterRoutes(v1)
		govHdl.RegisterRoutes(v1)
	}

	// 10. Swagger API文档端点
	docs.SwaggerInfo.Host = "localhost:" + cfg.Server.Port
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 11. 启动提案自动执行
	if cfg.Keeper.Enabled {
		k := keeper.New(readyQueue, govSvc, govSvc.Now, common.HexToAddress(cfg.Keeper.Account), cfg.Keeper.Interval, cfg.Keeper.BatchSize)
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Info("Keeper started", "account", cfg.Keeper.Account, "interval", cfg.Keeper.Interval.String())
			k.Run(ctx)
		}()
	}

	// 12. 启动HTTP服务器
	addr := ":" + cfg.Server.Port
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("Starting server on ", "address", addr)
		logger.Info("Swagger documentation available at: http://localhost:" + cfg.Server.Port + "/swagger/index.html")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error: ", err)
			cancel()
		}
	}()

	// 13. 等待关闭信号
	select {
	case <-sigCh:
		logger.Info("Received shutdown signal, starting graceful shutdown...")
	case <-ctx.Done():
		logger.Info("Server stopped unexpectedly, shutting down...")
	}

	// Step 1: 停止HTTP服务器
	logger.Info("Stopping HTTP server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error: ", err)
	} else {
		logger.Info("HTTP server stopped")
	}
	shutdownCancel()

	// Step 2: 取消context，停止 keeper
	cancel()

	// Step 3: 等待所有goroutine结束
	logger.Info("Waiting for all goroutines to finish...")
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logger.Info("All services stopped gracefully")
	case <-time.After(15 * time.Second):
		logger.Error("Timeout waiting for services to stop, forcing exit", nil)
	}

	// Step 4: 关闭外部连接
	if rpcClient != nil {
		rpcClient.Close()
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error("Redis close error: ", err)
		}
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
