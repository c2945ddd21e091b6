package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminActionModel 管理员操作审计记录
type AdminActionModel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AdminID    uint64             `bson:"admin_id" json:"adminId"`
	Action     string             `bson:"action" json:"action"`          // RANKING_OVERRIDE / RANKING_RECALCULATE
	TargetType string             `bson:"target_type" json:"targetType"` // product_ranking / ranking_period
	TargetID   uint64             `bson:"target_id" json:"targetId"`
	Before     map[string]any     `bson:"before,omitempty" json:"before"` // 修改前快照
	After      map[string]any     `bson:"after,omitempty" json:"after"`
	TraceID    string             `bson:"trace_id,omitempty" json:"traceId"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
}
