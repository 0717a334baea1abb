// Package eventbus 实现键控多播总线
package eventbus

import pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"

// observeSettings 是 pkg/interfaces.ObserveSettings 的别名
type observeSettings = pkgif.ObserveSettings

// busSettings 是 pkg/interfaces.BusSettings 的别名
type busSettings = pkgif.BusSettings
