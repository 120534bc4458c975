package implementation

import (
	"context"
	"fmt"
	"strings"

	"style-weaver-be/internal/entity"
	"style-weaver-be/internal/repository/contract"
	"style-weaver-be/pkg/styling"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

const (
	findTrendQuery = `
MATCH (t:Trend)
WHERE toLower(t.name) = toLower($name)
WITH t LIMIT 1
OPTIONAL MATCH (t)-[c:CONSISTS_OF]->(g:Garment)
WITH t, c, g ORDER BY c.position, g.name
WITH t, collect(g.name) AS garments
OPTIONAL MATCH (t)-[h:HAS_VIBE]->(v:Vibe)
WITH t, garments, h, v ORDER BY h.position, v.name
RETURN t.name AS name, garments, collect(v.name) AS vibes`

	listTrendsQuery = `
MATCH (t:Trend)
OPTIONAL MATCH (t)-[h:HAS_VIBE]->(v:Vibe)
WITH t, h, v ORDER BY h.position, v.name
WITH t, collect(v.name) AS vibes
RETURN t.name AS name, vibes
ORDER BY name`

	wipeTrendsQuery = `
MATCH (n)
WHERE n:Trend OR n:Garment OR n:Vibe
DETACH DELETE n`

	createTrendQuery = `CREATE (:Trend {name: $name})`

	linkGarmentsQuery = `
MATCH (t:Trend {name: $name})
UNWIND range(0, size($labels) - 1) AS i
MERGE (g:Garment {name: $labels[i]})
CREATE (t)-[:CONSISTS_OF {position: i}]->(g)`

	linkVibesQuery = `
MATCH (t:Trend {name: $name})
UNWIND range(0, size($labels) - 1) AS i
MERGE (v:Vibe {name: $labels[i]})
CREATE (t)-[:HAS_VIBE {position: i}]->(v)`
)

type TrendRepositoryImpl struct {
	driver   neo4j.DriverWithContext
	database string
}

func NewTrendRepository(driver neo4j.DriverWithContext, database string) contract.TrendRepository {
	return &TrendRepositoryImpl{driver: driver, database: database}
}

func (r *TrendRepositoryImpl) queryOptions(read bool) []neo4j.ExecuteQueryConfigurationOption {
	var opts []neo4j.ExecuteQueryConfigurationOption
	if r.database != "" {
		opts = append(opts, neo4j.ExecuteQueryWithDatabase(r.database))
	}
	if read {
		opts = append(opts, neo4j.ExecuteQueryWithReadersRouting())
	}
	return opts
}

func (r *TrendRepositoryImpl) FindTrend(ctx context.Context, name string) (*entity.Trend, error) {
	result, err := neo4j.ExecuteQuery(ctx, r.driver, findTrendQuery,
		map[string]any{"name": strings.TrimSpace(name)},
		neo4j.EagerResultTransformer,
		r.queryOptions(true)...,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: query trend %q: %v", styling.ErrUnavailable, name, err)
	}
	if len(result.Records) == 0 {
		return nil, fmt.Errorf("%w: trend %q", styling.ErrNotFound, name)
	}

	record := result.Records[0]
	trendName, _, err := neo4j.GetRecordValue[string](record, "name")
	if err != nil {
		return nil, fmt.Errorf("decode trend name: %w", err)
	}
	garments, _ := record.Get("garments")
	vibes, _ := record.Get("vibes")

	return &entity.Trend{
		Name:     trendName,
		Garments: toStrings(garments),
		Vibes:    toStrings(vibes),
	}, nil
}

func (r *TrendRepositoryImpl) ListTrends(ctx context.Context) ([]*entity.TrendSummary, error) {
	result, err := neo4j.ExecuteQuery(ctx, r.driver, listTrendsQuery, nil,
		neo4j.EagerResultTransformer,
		r.queryOptions(true)...,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: list trends: %v", styling.ErrUnavailable, err)
	}

	trends := make([]*entity.TrendSummary, 0, len(result.Records))
	for _, record := range result.Records {
		name, _, err := neo4j.GetRecordValue[string](record, "name")
		if err != nil || name == "" {
			continue
		}
		vibes, _ := record.Get("vibes")
		trends = append(trends, &entity.TrendSummary{Name: name, Vibes: toStrings(vibes)})
	}
	return trends, nil
}

func (r *TrendRepositoryImpl) ReplaceAll(ctx context.Context, trends []*entity.Trend) error {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: r.database,
		AccessMode:   neo4j.AccessModeWrite,
	})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		if err := run(ctx, tx, wipeTrendsQuery, nil); err != nil {
			return nil, err
		}
		for _, t := range trends {
			if err := run(ctx, tx, createTrendQuery, map[string]any{"name": t.Name}); err != nil {
				return nil, err
			}
			if err := run(ctx, tx, linkGarmentsQuery, map[string]any{"name": t.Name, "labels": t.Garments}); err != nil {
				return nil, err
			}
			if err := run(ctx, tx, linkVibesQuery, map[string]any{"name": t.Name, "labels": t.Vibes}); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	return err
}

func (r *TrendRepositoryImpl) VerifyConnectivity(ctx context.Context) error {
	return r.driver.VerifyConnectivity(ctx)
}

func run(ctx context.Context, tx neo4j.ManagedTransaction, query string, params map[string]any) error {
	result, err := tx.Run(ctx, query, params)
	if err != nil {
		return err
	}
	_, err = result.Consume(ctx)
	return err
}

// toStrings converts a Cypher list into strings, skipping nulls and non-strings.
func toStrings(value any) []string {
	list, ok := value.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, v := range list {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
