package bootstrap

import (
	"context"
	"log"
	"strings"
	"time"

	"style-weaver-be/internal/config"
	"style-weaver-be/internal/constant"
	"style-weaver-be/internal/controller"
	"style-weaver-be/internal/pkg/logger"
	"style-weaver-be/internal/pkg/metrics"
	"style-weaver-be/internal/repository/implementation"
	"style-weaver-be/internal/repository/memory"
	"style-weaver-be/internal/service"
	"style-weaver-be/pkg/embedding"
	"style-weaver-be/pkg/events"
	"style-weaver-be/pkg/graph"
	"style-weaver-be/pkg/imagegen"
	pktNats "style-weaver-be/pkg/nats"
	"style-weaver-be/pkg/resilience"
	"style-weaver-be/pkg/styling"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	StyleController    controller.IStyleController
	WardrobeController controller.IWardrobeController
	ChatController     controller.IChatController
	HealthController   controller.IHealthController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Metrics *metrics.Metrics
	Logger  logger.ILogger

	pubSub      *gochannel.GoChannel
	graphDriver neo4j.DriverWithContext
	natsPub     *pktNats.Publisher
	redis       *redis.Client
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	ctx := context.Background()

	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	appMetrics := metrics.New()

	breakerCfg := resilience.Config{
		FailureThreshold: uint32(cfg.Breaker.FailureThreshold),
		OpenTimeout:      cfg.Breaker.OpenTimeout,
		HalfOpenRequests: uint32(cfg.Breaker.HalfOpenRequests),
		OnStateChange:    appMetrics.BreakerStateChanged,
	}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Providers
	embeddingProvider, err := embedding.NewProvider(
		cfg.Ai.EmbeddingProvider,
		cfg.Keys.GoogleGemini,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OllamaModel,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize Embedding Provider: %v", err)
	}
	log.Printf("[INFO] Using Embedding Provider: %s", strings.ToUpper(cfg.Ai.EmbeddingProvider))

	imageGenerator := newImageGenerator(ctx, cfg)

	// 4. Stores
	wardrobeRepo := implementation.NewWardrobeItemRepository(db)

	graphDriver, err := graph.NewNeo4jDriver(ctx, cfg.Graph.URI, cfg.Graph.User, cfg.Graph.Password)
	if graphDriver == nil {
		log.Fatalf("[FATAL] Failed to create Neo4j driver: %v", err)
	}
	if err != nil {
		log.Printf("[WARN] Neo4j is not reachable, trends will degrade until it is: %v", err)
	}
	trendRepo := implementation.NewTrendRepository(graphDriver, cfg.Graph.Database)

	trendCache, rdb := newTrendCache(ctx, cfg, sysLogger)

	// NATS
	var eventPublisher events.Publisher
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL, sysLogger)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			eventPublisher = natsPub
		}
	}

	// 5. Styling pipeline
	wardrobeSearch := service.NewWardrobeSearchService(wardrobeRepo, embeddingProvider)

	resolver := styling.NewResolver(
		resilience.GuardTrendSource(trendRepo, breakerCfg, sysLogger),
		trendCache,
		styling.ResolverConfig{Timeout: cfg.Styling.GraphTimeout},
		sysLogger,
	)
	matcher, err := styling.NewMatcher(
		resilience.GuardWardrobeSearcher(wardrobeSearch, breakerCfg, sysLogger),
		styling.MatcherConfig{
			TopK:    cfg.Styling.TopK,
			Weights: styling.Weights{Similarity: cfg.Styling.SimilarityWeight, Tag: cfg.Styling.TagWeight},
			Timeout: cfg.Styling.VectorTimeout,
		},
		sysLogger,
	)
	if err != nil {
		log.Fatalf("[FATAL] Invalid matcher configuration: %v", err)
	}
	compositor := styling.NewCompositor(
		resilience.GuardImageGenerator(imageGenerator, breakerCfg, sysLogger),
		styling.CompositorConfig{Timeout: cfg.Styling.ImageTimeout, Placeholder: cfg.Ai.PlaceholderImage},
		sysLogger,
	)
	pipeline := styling.NewPipeline(resolver, matcher, compositor, sysLogger,
		styling.WithRequestTimeout(cfg.Styling.RequestTimeout),
		styling.WithObserver(appMetrics),
	)

	// 6. Services
	publisherService := service.NewPublisherService(cfg.Keys.WardrobeEmbedTopic, pubSub)
	wardrobeService := service.NewWardrobeService(wardrobeRepo, publisherService, embeddingProvider, sysLogger)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.WardrobeEmbedTopic,
		wardrobeRepo,
		wardrobeService,
		sysLogger,
	)
	styleService := service.NewStyleService(pipeline, trendRepo, eventPublisher, cfg.Styling.GraphTimeout, sysLogger)
	chatService := service.NewChatService(nil, sysLogger)

	return &Container{
		StyleController:    controller.NewStyleController(styleService),
		WardrobeController: controller.NewWardrobeController(wardrobeService),
		ChatController:     controller.NewChatController(chatService),
		HealthController:   controller.NewHealthController("Style Weaver API", cfg.App.Version),

		ConsumerService: consumerService,

		Metrics: appMetrics,
		Logger:  sysLogger,

		pubSub:      pubSub,
		graphDriver: graphDriver,
		natsPub:     natsPub,
		redis:       rdb,
	}
}

// Close releases connections in reverse order of creation.
func (c *Container) Close(ctx context.Context) {
	if c.natsPub != nil {
		c.natsPub.Close()
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Printf("[WARN] Failed to close Redis: %v", err)
		}
	}
	if err := c.graphDriver.Close(ctx); err != nil {
		log.Printf("[WARN] Failed to close Neo4j driver: %v", err)
	}
	if err := c.pubSub.Close(); err != nil {
		log.Printf("[WARN] Failed to close event bus: %v", err)
	}
	_ = c.Logger.Sync()
}

func newImageGenerator(ctx context.Context, cfg *config.Config) styling.ImageGenerator {
	if strings.EqualFold(cfg.Ai.ImageProvider, constant.ImageProviderDisabled) || cfg.Keys.GoogleGemini == "" {
		log.Printf("[INFO] Image generation disabled, boards will use the placeholder image")
		return imagegen.Disabled{}
	}

	generator, err := imagegen.NewGeminiGenerator(ctx, cfg.Keys.GoogleGemini, cfg.Ai.ImageModel)
	if err != nil {
		log.Printf("[WARN] Failed to initialize Gemini image generator: %v", err)
		return imagegen.Disabled{}
	}
	log.Printf("[INFO] Using Image Provider: GEMINI (%s)", cfg.Ai.ImageModel)
	return generator
}

// newTrendCache returns the Redis cache when configured and reachable, the
// in-process cache otherwise. The client is returned so it can be closed.
func newTrendCache(ctx context.Context, cfg *config.Config, sysLogger logger.ILogger) (styling.TrendCache, *redis.Client) {
	if cfg.App.CacheDriver != constant.CacheDriverRedis {
		return memory.NewTrendCache(cfg.Styling.TrendCacheTTL), nil
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Printf("[WARN] Redis is not reachable, using in-memory trend cache: %v", err)
		_ = rdb.Close()
		return memory.NewTrendCache(cfg.Styling.TrendCacheTTL), nil
	}

	return implementation.NewRedisTrendCache(rdb, cfg.Styling.TrendCacheTTL, sysLogger), rdb
}
