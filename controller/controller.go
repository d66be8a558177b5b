package controller

import (
	"ratein-backend/service/chat"
)

// orchestrator 进程内唯一的 Run 编排器，Init 时装配
var orchestrator *chat.Orchestrator

func Init(orc *chat.Orchestrator) {
	orchestrator = orc
}
