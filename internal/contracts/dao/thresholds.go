package dao

// MaxBasisPoints 阈值上限（100%）
const MaxBasisPoints = 10000

// Thresholds 计算法定人数与支持票门槛，均向上取整：
// quorum = ceil(registered * quorumBps / 10000)，support = ceil(votes * supportBps / 10000)
func Thresholds(registered, votes, quorumBps, supportBps uint64) (quorumVotes, supportVotes uint64) {
	return ceilBps(registered, quorumBps), ceilBps(votes, supportBps)
}

func ceilBps(n, bps uint64) uint64 {
	return (n*bps + MaxBasisPoints - 1) / MaxBasisPoints
}
