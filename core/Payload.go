package core

import "fmt"

const PayloadTerminator = "~"

const FrameHeader = "BS" // Battle situation 每一幀的狀態

// Payload formats the frame as a single trace line:
// ballX,ballY,leftX,leftY,leftScore,rightX,rightY,rightScore,state
func (s Snapshot) Payload() string {
	payload := fmt.Sprintf("%.2f,%.2f,%.2f,%.2f,%d,%.2f,%.2f,%d,%s",
		s.Ball.X, s.Ball.Y,
		s.Left.X, s.Left.Y, s.LeftScore,
		s.Right.X, s.Right.Y, s.RightScore,
		s.State)
	return FrameHeader + payload + PayloadTerminator
}
