package announcementerrors

import (
	"net/http"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/shared/apperror"
)

var (
	ErrAnnouncementNotFound = apperror.New("ANNOUNCEMENT_NOT_FOUND", "Announcement not found", http.StatusNotFound)
	ErrInvalidPriority      = apperror.New("INVALID_PRIORITY", "Priority must be LOW, NORMAL or HIGH", http.StatusUnprocessableEntity)
	ErrInvalidPublishWindow = apperror.New("INVALID_PUBLISH_WINDOW", "publish_from must not be after publish_to", http.StatusUnprocessableEntity)
)
