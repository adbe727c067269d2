// 指示: miu200521358
package mmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"
)

const scaleEpsilon = 1e-12

// UpAxis は鉛直軸(Y+)を表す。
var UpAxis = mgl64.Vec3{0, 1, 0}

// Transform はノードの平行移動・回転・スケールを表す。
type Transform struct {
	Translation r3.Vec
	Rotation    mgl64.Quat
	Scale       r3.Vec
}

// NewTransform は単位変換を生成する。
func NewTransform() Transform {
	return Transform{
		Rotation: mgl64.QuatIdent(),
		Scale:    r3.Vec{X: 1, Y: 1, Z: 1},
	}
}

// NewTransformAt は指定位置の単位変換を生成する。
func NewTransformAt(translation r3.Vec) Transform {
	tf := NewTransform()
	tf.Translation = translation
	return tf
}

// Mul は親変換 t に子のローカル変換 local を合成した結果を返す。
func (t Transform) Mul(local Transform) Transform {
	scaled := r3.Vec{
		X: t.Scale.X * local.Translation.X,
		Y: t.Scale.Y * local.Translation.Y,
		Z: t.Scale.Z * local.Translation.Z,
	}
	return Transform{
		Translation: r3.Add(t.Translation, RotateVec(t.Rotation, scaled)),
		Rotation:    t.Rotation.Mul(local.Rotation).Normalize(),
		Scale: r3.Vec{
			X: t.Scale.X * local.Scale.X,
			Y: t.Scale.Y * local.Scale.Y,
			Z: t.Scale.Z * local.Scale.Z,
		},
	}
}

// InverseTransformPoint はワールド座標 p を t のローカル空間に変換する。
func (t Transform) InverseTransformPoint(p r3.Vec) r3.Vec {
	local := RotateVec(t.Rotation.Inverse(), r3.Sub(p, t.Translation))
	return r3.Vec{
		X: safeDiv(local.X, t.Scale.X),
		Y: safeDiv(local.Y, t.Scale.Y),
		Z: safeDiv(local.Z, t.Scale.Z),
	}
}

// RotateVec は四元数 q で r3 ベクトル v を回転する。
func RotateVec(q mgl64.Quat, v r3.Vec) r3.Vec {
	rotated := q.Rotate(mgl64.Vec3{v.X, v.Y, v.Z})
	return r3.Vec{X: rotated[0], Y: rotated[1], Z: rotated[2]}
}

// Yaw は回転 q の鉛直軸周りの角度(YXZ オイラーの第1成分)をラジアンで返す。
func Yaw(q mgl64.Quat) float64 {
	x, y, z, w := q.X(), q.Y(), q.Z(), q.W
	return math.Atan2(2*(x*z+w*y), 1-2*(x*x+y*y))
}

// YawOnly は回転 q から鉛直軸周りの成分のみを残した回転を返す。
func YawOnly(q mgl64.Quat) mgl64.Quat {
	return mgl64.QuatRotate(Yaw(q), UpAxis)
}

func safeDiv(v float64, s float64) float64 {
	if math.Abs(s) <= scaleEpsilon {
		return 0
	}
	return v / s
}
