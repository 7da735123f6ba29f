package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"moodboard/internal/errs"
	"moodboard/internal/models"
	"moodboard/internal/repositories"
	"moodboard/internal/validators"
)

const itemListCacheTTL = 5 * time.Minute

// BoardItemService is the store canvas sessions and REST clients sync
// against. Item lists are served through a redis cache that every
// mutation invalidates.
type BoardItemService struct {
	itemRepo *repositories.BoardItemRepository
	redis    *redis.Client
	ctx      context.Context
}

func NewBoardItemService(itemRepo *repositories.BoardItemRepository, redis *redis.Client, ctx context.Context) *BoardItemService {
	return &BoardItemService{
		itemRepo: itemRepo,
		redis:    redis,
		ctx:      ctx,
	}
}

func itemListCacheKey(boardId uuid.UUID) string {
	return "board_items:" + boardId.String()
}

func (bis *BoardItemService) ListItems(boardId uuid.UUID) ([]models.BoardItem, error) {
	key := itemListCacheKey(boardId)
	if cached, err := bis.redis.Get(bis.ctx, key).Bytes(); err == nil {
		var items []models.BoardItem
		if err := json.Unmarshal(cached, &items); err == nil {
			return items, nil
		}
	}

	items, err := bis.itemRepo.FindBoardItems(boardId)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(items); err == nil {
		if err := bis.redis.Set(bis.ctx, key, payload, itemListCacheTTL).Err(); err != nil {
			log.Printf("Error caching item list for board %s: %v", boardId, err)
		}
	}
	return items, nil
}

func (bis *BoardItemService) CreateItem(boardId uuid.UUID, body *models.CreateBoardItemRequestBody) (*models.BoardItem, error) {
	if err := validators.ValidateContent(body.Type, body.Content); err != nil {
		return nil, err
	}
	if err := validators.ValidateGeometry(body.Width, body.Height); err != nil {
		return nil, err
	}

	item, err := bis.itemRepo.CreateItem(boardId, body)
	if err != nil {
		return nil, err
	}
	bis.invalidate(boardId)
	return item, nil
}

func (bis *BoardItemService) UpdateItem(boardId, itemId uuid.UUID, updates *models.UpdateBoardItemRequestBody) (*models.BoardItem, error) {
	if updates == nil || !updates.HasUpdates() {
		return nil, errs.ErrNoUpdates
	}

	if updates.Content != nil {
		// Content shape is fixed by the item's type, so look it up first.
		existing, err := bis.itemRepo.FindItemById(boardId, itemId)
		if err != nil {
			return nil, err
		}
		if err := validators.ValidateContent(existing.Type, updates.Content); err != nil {
			return nil, err
		}
	}

	item, err := bis.itemRepo.UpdateItem(boardId, itemId, updates.ToUpdatesMap())
	if err != nil {
		return nil, err
	}
	bis.invalidate(boardId)
	return item, nil
}

func (bis *BoardItemService) DeleteItem(boardId, itemId uuid.UUID) error {
	if err := bis.itemRepo.DeleteItem(boardId, itemId); err != nil {
		return err
	}
	bis.invalidate(boardId)
	return nil
}

func (bis *BoardItemService) invalidate(boardId uuid.UUID) {
	if err := bis.redis.Del(bis.ctx, itemListCacheKey(boardId)).Err(); err != nil {
		log.Printf("Error invalidating item list cache for board %s: %v", boardId, err)
	}
}
