package mongodb

import (
	"fmt"
	"reflect"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Rana718/arcadia/internal/database/common"
	"github.com/Rana718/arcadia/internal/dataset"
)

// buildFilter mirrors common.BuildSelect: equality, $in for slices, inclusive date range.
func buildFilter(q common.Query) bson.D {
	keys := make([]string, 0, len(q.Where))
	for k := range q.Where {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	filter := bson.D{}
	for _, k := range keys {
		v := q.Where[k]
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Slice {
			filter = append(filter, bson.E{Key: k, Value: bson.M{"$in": v}})
			continue
		}
		filter = append(filter, bson.E{Key: k, Value: v})
	}

	if q.DateColumn != "" && (!q.From.IsZero() || !q.To.IsZero()) {
		rng := bson.D{}
		if !q.From.IsZero() {
			rng = append(rng, bson.E{Key: "$gte", Value: q.From})
		}
		if !q.To.IsZero() {
			rng = append(rng, bson.E{Key: "$lte", Value: q.To})
		}
		filter = append(filter, bson.E{Key: q.DateColumn, Value: rng})
	}
	return filter
}

func findOptions(q common.Query) *options.FindOptions {
	opts := options.Find()
	if len(q.Columns) > 0 {
		projection := bson.D{{Key: "_id", Value: 0}}
		for _, c := range q.Columns {
			projection = append(projection, bson.E{Key: c, Value: 1})
		}
		opts.SetProjection(projection)
	}
	if q.OrderBy != "" {
		dir := 1
		if q.Desc {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: q.OrderBy, Value: dir}})
	}
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}
	return opts
}

// toDocuments keeps lists as arrays and dates as BSON dates.
func toDocuments(cols []dataset.Column, rows [][]interface{}) ([]interface{}, error) {
	docs := make([]interface{}, len(rows))
	for i, row := range rows {
		if len(row) != len(cols) {
			return nil, fmt.Errorf("row %d has %d values, expected %d", i, len(row), len(cols))
		}
		doc := make(bson.D, len(cols))
		for j, c := range cols {
			doc[j] = bson.E{Key: c.Name, Value: row[j]}
		}
		docs[i] = doc
	}
	return docs, nil
}

func convertBSONValue(v interface{}) interface{} {
	switch val := v.(type) {
	case bson.M:
		result := make(map[string]interface{})
		for k, v := range val {
			result[k] = convertBSONValue(v)
		}
		return result
	case bson.A:
		result := make([]interface{}, len(val))
		for i, v := range val {
			result[i] = convertBSONValue(v)
		}
		return result
	case bson.D:
		result := make(map[string]interface{})
		for _, elem := range val {
			result[elem.Key] = convertBSONValue(elem.Value)
		}
		return result
	case primitive.DateTime:
		return val.Time().UTC()
	case primitive.ObjectID:
		return val.Hex()
	case int32:
		return int64(val)
	default:
		return v
	}
}
