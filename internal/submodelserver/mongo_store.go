/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

package submodelserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/eclipse-tractusx/traceability-go-components/internal/common"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type documentInserter interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

// MongoStore keeps one document per submodel, keyed by the submodel id.
type MongoStore struct {
	collection documentInserter
	client     *mongo.Client
}

// NewMongoStore connects to cfg.URI and pings the server.
func NewMongoStore(ctx context.Context, cfg common.MongoConfig) (*MongoStore, error) {
	if cfg.URI == "" || cfg.Database == "" || cfg.Collection == "" {
		return nil, errors.New("mongo uri, database and collection must be set")
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging mongo: %w", err)
	}
	return &MongoStore{
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
		client:     client,
	}, nil
}

// submodelDocument builds the stored document. JSON objects are stored as
// embedded documents, everything else as the raw string.
func submodelDocument(id string, payload string) bson.D {
	doc := bson.D{{Key: "_id", Value: id}}
	var parsed bson.D
	if err := bson.UnmarshalExtJSON([]byte(payload), false, &parsed); err == nil {
		return append(doc, bson.E{Key: "payload", Value: parsed})
	}
	return append(doc, bson.E{Key: "raw", Value: payload})
}

// Save inserts the payload. A second save under the same id is a conflict.
func (s *MongoStore) Save(ctx context.Context, id string, payload string) error {
	if _, err := s.collection.InsertOne(ctx, submodelDocument(id, payload)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return common.NewErrConflict("submodel '" + id + "' already stored")
		}
		return common.NewErrBadGateway(fmt.Sprintf("SUBMODELSERVER-MONGO-INSERT submodel %s: %v", id, err))
	}
	return nil
}

// Close disconnects the client.
func (s *MongoStore) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
